// Package config loads the deck builder configuration from YAML and the
// environment.
package config

import "github.com/go-sql-driver/mysql"

// Word-list formats understood by the ingestors.
const (
	FormatHSK        = "hsk"
	FormatIntegrated = "integrated"
	FormatHanping    = "hanping"
)

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	WordList   WordListConfig   `yaml:"wordlist"`
	MySQL      MySQLConfig      `yaml:"mysql"`
	Log        LogConfig        `yaml:"log"`
	GUIDPrefix string           `yaml:"guid_prefix" env:"ZHDECK_GUID_PREFIX" env-default:"zhdeck"`
}

// DictionaryConfig lists the dictionaries to index. Entries of ExtraPaths are
// indexed before those of Paths, so supplementary words come first in search
// results.
type DictionaryConfig struct {
	Paths         []string `yaml:"paths"          env:"ZHDECK_DICT_PATHS"       env-separator:","`
	ExtraPaths    []string `yaml:"extra_paths"    env:"ZHDECK_DICT_EXTRA_PATHS" env-separator:","`
	OverridesPath string   `yaml:"overrides_path" env:"ZHDECK_OVERRIDES_PATH"`
}

// WordListConfig describes the word list to turn into notes.
type WordListConfig struct {
	Format string `yaml:"format" env:"ZHDECK_WORDLIST_FORMAT" env-default:"hsk"`
	Path   string `yaml:"path"   env:"ZHDECK_WORDLIST_PATH"`
	// Tag is attached to every Hanping note. Curriculum formats derive their
	// tags from the level columns instead.
	Tag  string   `yaml:"tag"  env:"ZHDECK_WORDLIST_TAG"`
	Skip []string `yaml:"skip" env:"ZHDECK_WORDLIST_SKIP" env-separator:"," env-default:"纪录"`
}

// MySQLConfig holds the note store connection settings.
type MySQLConfig struct {
	User     string `yaml:"user"     env:"DBUSER"      env-default:"flashcards"`
	Password string `yaml:"password" env:"DBPASS"`
	Addr     string `yaml:"addr"     env:"DBADDR"      env-default:"127.0.0.1:3306"`
	Database string `yaml:"database" env:"DBNAME"      env-default:"flashcards"`
	Table    string `yaml:"table"    env:"DBTABLE"     env-default:"notes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DriverConfig returns the settings in the form the MySQL driver expects.
func (m MySQLConfig) DriverConfig() mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = m.User
	cfg.Passwd = m.Password
	cfg.Net = "tcp"
	cfg.Addr = m.Addr
	cfg.DBName = m.Database
	return *cfg
}

// DictionaryFiles returns every dictionary path in indexing order.
func (d DictionaryConfig) DictionaryFiles() []string {
	files := make([]string, 0, len(d.ExtraPaths)+len(d.Paths))
	files = append(files, d.ExtraPaths...)
	return append(files, d.Paths...)
}
