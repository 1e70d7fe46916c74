package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/databricks/databricks-sdk-go/config"
	"gopkg.in/ini.v1"
)

// Registry resolves Databricks connection profiles from a .databrickscfg file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (*config.Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load databricks config %q: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*config.Config, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %q not found", profile)
	}

	host := section.Key("host").String()
	token := section.Key("token").String()

	if host == "" || token == "" {
		return nil, fmt.Errorf("profile %q is missing host or token", profile)
	}

	// Profiles commonly carry the scheme; the SDK accepts either form, so
	// keep whatever the profile used, minus stray whitespace.
	return &config.Config{
		Host:  strings.TrimSpace(host),
		Token: strings.TrimSpace(token),
	}, nil
}
