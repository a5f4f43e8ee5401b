package main

import (
	"github.com/spf13/viper"

	"github.com/apiprobe/structdiff/pkg/differ"
	"github.com/apiprobe/structdiff/pkg/logging"
)

// FileOptions mirrors the comparison settings as they appear in a YAML
// config file. Booleans are pointers so that an absent key keeps the
// default instead of forcing false.
type FileOptions struct {
	Path           string         `mapstructure:"path"`
	CheckValue     *bool          `mapstructure:"check_value"`
	CheckMissing   *bool          `mapstructure:"check_missing"`
	CheckRedundant *bool          `mapstructure:"check_redundant"`
	CheckType      *bool          `mapstructure:"check_type"`
	ExcludeFields  []string       `mapstructure:"exclude_fields"`
	IgnoreOrder    *bool          `mapstructure:"ignore_order"`
	TypeGroups     []string       `mapstructure:"type_groups"`
	Log            logging.Config `mapstructure:"log"`
}

func loadOptionsFile(path string) (*FileOptions, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var fileOpts FileOptions
	if err := v.Unmarshal(&fileOpts); err != nil {
		return nil, err
	}
	return &fileOpts, nil
}

// apply overlays the file settings onto opts and logCfg.
func (f *FileOptions) apply(opts *differ.Options, logCfg *logging.Config) error {
	if f.Path != "" {
		opts.Path = f.Path
	}
	if f.CheckValue != nil {
		opts.CheckValue = *f.CheckValue
	}
	if f.CheckMissing != nil {
		opts.CheckMissing = *f.CheckMissing
	}
	if f.CheckRedundant != nil {
		opts.CheckRedundant = *f.CheckRedundant
	}
	if f.CheckType != nil {
		opts.CheckType = *f.CheckType
	}
	if f.ExcludeFields != nil {
		opts.ExcludeFields = f.ExcludeFields
	}
	if f.IgnoreOrder != nil {
		opts.IgnoreOrder = *f.IgnoreOrder
	}
	for _, spec := range f.TypeGroups {
		group, err := differ.ParseTypeGroup(spec)
		if err != nil {
			return err
		}
		opts.TypeGroups = append(opts.TypeGroups, group)
	}
	if f.Log.Level != "" {
		logCfg.Level = f.Log.Level
	}
	if f.Log.Format != "" {
		logCfg.Format = f.Log.Format
	}
	return nil
}
