package initialize

import (
	"os"

	"csvvault/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// SetLogLevel applies a config-supplied level; unknown values keep info.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	global.Logger = global.Logger.Level(lvl)
}
