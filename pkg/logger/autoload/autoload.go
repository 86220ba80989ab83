// Package autoload initializes the global logger from LOG_* environment
// variables. Import for side effect in main:
//
//	_ "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/logger/autoload"
package autoload

import (
	configx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/config"
	logx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}
