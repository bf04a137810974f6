// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// STARLARK_GLOBAL is the global a definition script binds its table to.
const STARLARK_GLOBAL = "instructions"

// starDefine is the define(format, encoding) builtin.
func starDefine(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var format, encoding string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "format", &format, "encoding", &encoding)
	if err != nil {
		return nil, err
	}

	return starlark.String(format + " ; " + encoding), nil
}

// LoadStarlark builds a table from a Starlark definition script.
//
// The script must bind 'instructions' to either definition text or a list
// of definition lines. DEFAULT holds the built-in definition text, and
// define(format, encoding) joins a format and encoding into a definition:
//
//	instructions = DEFAULT + "\n" + define("swp R", "#001110RR")
//
// src is as for starlark.ExecFileOptions; if nil, filename is read.
func LoadStarlark(filename string, src any) (tbl *Table, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DEFAULT": starlark.String(Definitions),
		"define":  starlark.NewBuiltin("define", starDefine),
	}

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	value, ok := dict[STARLARK_GLOBAL]
	if !ok {
		err = ErrStarlarkMissing
		return
	}

	if text, ok := starlark.AsString(value); ok {
		return NewTable(text)
	}

	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrStarlarkType(value.Type())
		return
	}
	defer iter.Done()

	var lines []string
	var item starlark.Value
	for iter.Next(&item) {
		line, ok := starlark.AsString(item)
		if !ok {
			err = ErrStarlarkType(item.Type())
			return
		}
		// A single entry may itself hold several definitions.
		lines = append(lines, strings.Split(line, "\n")...)
	}

	return newTable(lines)
}
