package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/graxinc/errutil"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug         bool          `env:"DEBUG"`
	ApplicationID snowflake.ID  `env:"APPLICATION_ID,required"`
	GuildID       snowflake.ID  `env:"NICKBOT_GUILDID,required"`
	RoleID        snowflake.ID  `env:"NICKBOT_ROLEID,required"`
	Token         string        `env:"DISCORD_TOKEN,required,notEmpty"`
	YoutubeDLPath string        `env:"YOUTUBE_DL_PATH,required,notEmpty"`
	Intents       int           `env:"BOT_INTENTS" envDefault:"129"`
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"15s"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	CacheURL      string        `env:"REDIS_URL"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// Load reads an optional .env file from the working directory and parses
// the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errutil.With(err)
	}

	return Parse(env.ToMap(os.Environ()))
}

func Parse(environ map[string]string) (Config, error) {
	var conf Config
	if err := env.ParseWithOptions(&conf, env.Options{
		Environment: environ,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(snowflake.ID(0)): parseSnowflake,
		},
	}); err != nil {
		return Config{}, errutil.With(err)
	}

	if conf.ApplicationID == 0 || conf.GuildID == 0 || conf.RoleID == 0 {
		return Config{}, errors.New("APPLICATION_ID, NICKBOT_GUILDID and NICKBOT_ROLEID must be non-zero")
	}
	if conf.SearchTimeout <= 0 {
		return Config{}, errors.New("SEARCH_TIMEOUT must be positive")
	}

	return conf, nil
}

func parseSnowflake(v string) (any, error) {
	id, err := snowflake.Parse(v)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, errors.New("snowflake must be non-zero")
	}
	return id, nil
}
