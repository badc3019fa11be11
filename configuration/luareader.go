// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
//
// config must be a non-nil pointer to a struct, any fields not set by
// the file keep their existing values so defaults can be preloaded
func ParseConfigurationFile(fileName string, config interface{}) error {
	v := reflect.ValueOf(config)
	if reflect.Ptr != v.Kind() || v.IsNil() || reflect.Struct != v.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}

	if !util.EnsureFileExists(fileName) {
		return fmt.Errorf("%w: %q", fault.ErrNotFoundConfigFile, fileName)
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
