package engine

import (
	"fmt"
	"log/slog"

	"github.com/nathoo/questtweaks/types"
)

// featureLines describes every enabled feature, one line each.
func featureLines(cfg *types.Config) []string {
	var lines []string
	add := func(on bool, msg string) {
		if on {
			lines = append(lines, msg)
		}
	}
	remove := cfg.RemoveConditions

	add(cfg.RevealAllQuestObjectives, "Revealing hidden/conditional objectives.")
	add(cfg.RevealUnknownRewards, "Revealing unknown rewards.")
	add(cfg.RemoveTimeGates, "Removing time gates from all quests.")
	add(remove.Target, "Removing target restrictions from elimination requirements.")
	add(remove.Weapon, "Removing weapon/caliber restrictions from elimination requirements.")
	add(remove.WeaponMods, "Removing weapon mod restrictions from elimination requirements.")
	add(remove.SelfGear, "Removing equipment restrictions from elimination requirements.")
	add(remove.EnemyGear, "Removing enemy equipment restrictions from elimination requirements.")
	add(remove.SelfHealthEffect, "Removing status effects from elimination requirements.")
	add(remove.EnemyHealthEffect, "Removing enemy status effects from elimination requirements.")
	add(remove.BodyPart, "Removing body part elimination requirement.")
	add(remove.Distance, "Removing distance elimination requirement.")
	add(remove.Time, "Removing time from elimination requirement.")

	switch {
	case remove.Zone && remove.Map:
		lines = append(lines, "Removing zone and map elimination requirements.")
	case remove.Zone:
		lines = append(lines, "Replacing zone elimination requirements with location.")
	case remove.Map:
		lines = append(lines, "Removing map objective requirements.")
	}

	add(remove.FindInRaid, "Removing found in raid requirement for item hand-ins.")
	add(cfg.HandoverItemCount >= 0,
		fmt.Sprintf("Setting required number of items for hand-over to %d.", cfg.HandoverItemCount))
	add(cfg.EliminationCount >= 0,
		fmt.Sprintf("Setting required number of eliminations to %d.", cfg.EliminationCount))
	add(cfg.LightkeeperOnlyRequireLevel > 0,
		fmt.Sprintf("Removing Network Provider Part 1 prerequisites, making it available at level %d.", cfg.LightkeeperOnlyRequireLevel))
	add(cfg.TarkovShooterM10, "Adding Sako TRG M10 to Tarkov Shooter 1-6.")
	add(cfg.AddMissingSetupShotguns, "Adding missing shotguns to Setup.")
	add(cfg.GunsmithChallenge.RequiredKills > 0,
		fmt.Sprintf("Setting gunsmith challenge to %d kills of %s.", cfg.GunsmithChallenge.RequiredKills, cfg.GunsmithChallenge.TargetType))
	add(len(cfg.ExemptQuests) > 0,
		fmt.Sprintf("Leaving %d exempt quests unchanged.", len(cfg.ExemptQuests)))
	add(cfg.AffectRepeatables && remove.AnyEnabled(), "Applying condition removal to repeatable quests.")
	return lines
}

func logFeatures(log *slog.Logger, cfg *types.Config) {
	for _, line := range featureLines(cfg) {
		log.Info(line)
	}
}
