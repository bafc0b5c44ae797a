package bench

import (
	"fmt"

	"github.com/coniks-sys/merkletrie/application"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	"github.com/coniks-sys/merkletrie/utils"
)

// A Config contains the workload of a benchmark run
// which is read at initialization time from
// a TOML format configuration file.
type Config struct {
	*application.CommonConfig
	// Hasher is the registered id of the trie hasher to build with.
	Hasher string `toml:"hasher"`
	// Keys is the number of insertions performed.
	Keys int64 `toml:"keys"`
	// Compression narrows the key range to [-Keys/Compression,
	// Keys/Compression) so that most keys are inserted more than once.
	Compression int64 `toml:"compression"`
	// Queries is the number of lookups, drawn from [-Keys, Keys).
	Queries int64 `toml:"queries"`
	// InsertSeed and QuerySeed seed the two key streams.
	InsertSeed uint64 `toml:"insert_seed"`
	QuerySeed  uint64 `toml:"query_seed"`
	// VerifyProofs makes every lookup build and verify a proof.
	VerifyProofs bool `toml:"verify_proofs"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new benchmark configuration with the given
// file path, logger configuration and the default workload
// (30000 keys, compression 3, 30000 queries, seeds 1 and 2).
func NewConfig(file, encoding string, logConfig *application.LoggerConfig,
	hasherID string) *Config {
	var conf = Config{
		CommonConfig: application.NewCommonConfig(file, encoding, logConfig),
		Hasher:       hasherID,
		Keys:         30000,
		Compression:  3,
		Queries:      30000,
		InsertSeed:   1,
		QuerySeed:    2,
		VerifyProofs: true,
	}
	return &conf
}

// Load initializes a benchmark configuration from the
// corresponding config file and validates the workload.
// A relative logger path is resolved against the config file.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.Logger == nil {
		conf.Logger = &application.LoggerConfig{Environment: "production"}
	}
	if conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	return conf.validate()
}

func (conf *Config) validate() error {
	if _, err := hasher.Hasher(conf.Hasher); err != nil {
		return err
	}
	if conf.Compression <= 0 {
		return fmt.Errorf("Compression must be positive (got %d)", conf.Compression)
	}
	if conf.Keys < conf.Compression {
		return fmt.Errorf("Keys must be at least the compression (got %d < %d)",
			conf.Keys, conf.Compression)
	}
	if conf.Queries < 0 {
		return fmt.Errorf("Queries must not be negative (got %d)", conf.Queries)
	}
	return nil
}

// Save writes the benchmark configuration to its path.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the benchmark's configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}
