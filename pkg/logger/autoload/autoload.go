// Package autoload configures the global logger from the environment
// as a side effect of being imported:
//
//	import _ "github.com/staywise/hotel-dialogue/pkg/logger/autoload"
package autoload

import (
	"github.com/staywise/hotel-dialogue/pkg/config"
	logx "github.com/staywise/hotel-dialogue/pkg/logger"
)

func init() {
	conf := config.MustNew[logx.Config]("LOG")
	logx.Init(*conf)
}
