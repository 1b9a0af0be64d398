// Package refdata holds the hardcoded game ids the targeted patches and
// exemption checks refer to. Ids drift between game versions; this is the
// one place to update them.
package refdata

// Quests.
const (
	NetworkProviderPart1 = "625d6ff5ddc94657c21a1625"
	Setup                = "5c1234c286f77406fa13baeb"
)

// TarkovShooter lists The Tarkov Shooter parts 1 to 6.
var TarkovShooter = []string{
	"5bc4776586f774512d07cf05",
	"5bc479e586f7747f376c7da3",
	"5bc47dbf86f7741ee74e93b9",
	"5bc480a686f7741af0342e29",
	"5bc4826c86f774106d22d88b",
	"5bc4836986f7740c0152911c",
}

// GunsmithChallenge lists the elimination quests rewritten by the gunsmith
// challenge override.
var GunsmithChallenge = []string{
	"5c0be13186f7746f016734aa",
}

// Weapons.
const (
	SakoTRGM10 = "673cab3e03c6a20581028bc1"
)

// SetupShotguns are the pump and semi-auto shotguns Setup should accept.
var SetupShotguns = []string{
	"54491c4f4bdc2db1078b4568", // MP-133
	"56dee2bdd2720bc8328b4567", // MP-153
	"606dae0ab0e443224b421bb7", // MP-155
	"5a7828548dc32e5a9c28b516", // Remington 870
	"5e870397991fd70db46995c8", // Mossberg 590A1
	"576165642459773c7a400233", // Saiga-12K
	"5a38e6bac4a2826c6e06d79b", // TOZ-106
	"60db29ce99594040e04c4a27", // MTs-255-12
	"6259b864ebedf17603599e88", // Benelli M3
	"5e848cc2988a8701445df1e8", // KS-23M
}

// KeyClasses are the parent classes of keys, mechanical keys and keycards.
var KeyClasses = map[string]bool{
	"543be5e94bdc2df1348b4568": true,
	"5c99f98d86f7745c314214b3": true,
	"5c164d2286f774194c5e69fa": true,
}

// HandoverCountBlacklist are hand-in items whose count is meaningless to
// override.
var HandoverCountBlacklist = map[string]bool{
	"62e910aaf957f2915e0a5e36": true, // Digital secure DSP radio transmitter
	"5991b51486f77447b112d44f": true, // UAV electronic jamming device
	"6399f54b0a36db13c823ad21": true, // Note with code word "Voron"
}

// Locations.
const (
	FactoryNight     = "factory4_night"
	FactoryNightName = "Factory"
)

// Target markers.
const (
	AnyTarget = "Any"
	AnyMap    = "any"
)

// ChallengeTargets are the accepted gunsmith challenge target types.
var ChallengeTargets = map[string]bool{
	"Any":    true,
	"Savage": true,
	"AnyPmc": true,
	"Usec":   true,
	"Bear":   true,
}
