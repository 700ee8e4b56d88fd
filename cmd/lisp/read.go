package main

import (
	"encoding/json"
	"fmt"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/lispconfigs"
	"github.com/reusee/tailisp/lispdata"
)

func init() {
	cmds.Define("read", cmds.Func(func(path string) {
		setAction(func(a *app) error {
			return a.readFile(path)
		})
	}).Args("file").Desc("print the values of file in canonical form"))
}

func (a *app) readFile(path string) error {
	ctx := a.fileContext(path)
	src, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	values, err := a.read(ctx, src)
	if err != nil {
		return err
	}

	switch a.format {

	case lispconfigs.FormatText:
		for _, value := range values {
			if _, err := fmt.Fprintln(a.stdout, lispdata.Display(value)); err != nil {
				return err
			}
		}
		return nil

	case lispconfigs.FormatJSON:
		forms := make([]string, 0, len(values))
		for _, value := range values {
			forms = append(forms, lispdata.Display(value))
		}
		return json.NewEncoder(a.stdout).Encode(struct {
			Name  string   `json:"name"`
			Forms []string `json:"forms"`
		}{
			Name:  path,
			Forms: forms,
		})

	}
	return fmt.Errorf("unknown format: %s", a.format)
}
