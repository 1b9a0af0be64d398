package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/questtweaks/types"
)

// decodeLua runs a Lua config file in a sandboxed VM and decodes the table
// passed to Config { ... } onto cfg. The VM is discarded afterwards.
//
//	Config {
//	  revealUnknownRewards = true,
//	  removeConditions = RemoveAll(),
//	  exemptQuests = { "5936d90786f7742b1420ba5b" },
//	}
func decodeLua(path string, cfg *types.Config) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	var tables []*lua.LTable
	registerConfigAPI(L, &tables)

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("executing %s: %w", path, err)
	}
	switch len(tables) {
	case 0:
		return errors.New("no Config { ... } block")
	case 1:
	default:
		return fmt.Errorf("%d Config blocks, want 1", len(tables))
	}

	data, err := json.Marshal(toGoValue(tables[0]))
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func registerConfigAPI(L *lua.LState, tables *[]*lua.LTable) {
	// Config { ... }
	L.SetGlobal("Config", L.NewFunction(func(L *lua.LState) int {
		*tables = append(*tables, L.CheckTable(1))
		return 0
	}))

	// RemoveAll() returns a removeConditions table with every switch on.
	L.SetGlobal("RemoveAll", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		for _, key := range removalKeys {
			tbl.RawSetString(key, lua.LTrue)
		}
		L.Push(tbl)
		return 1
	}))
}

var removalKeys = []string{
	"target", "weapon", "weaponMods", "selfGear", "enemyGear",
	"selfHealthEffect", "enemyHealthEffect", "bodyPart", "distance",
	"time", "map", "zone", "findInRaid",
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// toGoValue converts a Lua value to a Go value recursively. An empty table
// becomes nil so it decodes as "not set" whether the field is a list or a
// table.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		// Sequential integer keys starting at 1 make an array.
		if maxN := val.MaxN(); maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		if len(m) == 0 {
			return nil
		}
		return m
	default:
		return nil
	}
}
