package lispconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tailisp/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
