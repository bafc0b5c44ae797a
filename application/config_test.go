package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sampleConfig struct {
	*CommonConfig
	Name  string `toml:"name"`
	Limit int    `toml:"limit"`
}

var _ AppConfig = (*sampleConfig)(nil)

func (conf *sampleConfig) Load(file, encoding string) error {
	conf.CommonConfig = NewCommonConfig(file, encoding, nil)
	return conf.GetLoader().Decode(conf)
}

func (conf *sampleConfig) Save() error {
	return conf.GetLoader().Encode(conf)
}

func (conf *sampleConfig) GetPath() string {
	return conf.Path
}

func TestConfigSaveLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	conf := &sampleConfig{
		CommonConfig: NewCommonConfig(file, "toml", &LoggerConfig{
			Environment: "development",
			Path:        "trie.log",
		}),
		Name:  "sample",
		Limit: 7,
	}
	if err := conf.Save(); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(buf), file) {
		t.Error("The config path should not be encoded, got", string(buf))
	}

	loaded := new(sampleConfig)
	if err := loaded.Load(file, "toml"); err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "sample" || loaded.Limit != 7 {
		t.Error("Unexpected values", loaded.Name, loaded.Limit)
	}
	if loaded.Logger == nil || loaded.Logger.Environment != "development" ||
		loaded.Logger.Path != "trie.log" {
		t.Error("Unexpected logger config", loaded.Logger)
	}
	if loaded.GetPath() != file {
		t.Error("Expected path", file, "got", loaded.GetPath())
	}
}

func TestConfigSaveRefusesOverwrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	conf := &sampleConfig{CommonConfig: NewCommonConfig(file, "toml", nil)}
	if err := conf.Save(); err != nil {
		t.Fatal(err)
	}
	if err := conf.Save(); err == nil {
		t.Error("Expected an error when the config file already exists")
	}
}

func TestConfigLoadMissingFile(t *testing.T) {
	conf := new(sampleConfig)
	if err := conf.Load(filepath.Join(t.TempDir(), "nope.toml"), "toml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestUnknownEncodingFallsBackToToml(t *testing.T) {
	if _, ok := newConfigLoader("yaml").(*TomlLoader); !ok {
		t.Error("Expected the TOML loader as the default")
	}
}
