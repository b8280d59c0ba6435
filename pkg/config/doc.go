// Package config loads typed configuration structs from environment
// variables and optional dotenv files.
//
// Parsing is delegated to github.com/caarlos0/env/v11, so fields use the usual
// `env`, `envDefault` and `required` tags. Nested structs are parsed as well,
// which lets a service embed the Config types of the packages it wires:
//
//	type AppConfig struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		HTTP httpserver.Config
//	}
//
// Results are cached per type. Call ResetCache, or LoadEnv which resets it,
// when the environment changes at runtime (mostly in tests).
package config
