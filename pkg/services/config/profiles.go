package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

const (
	SourceCSV = "csv"
	SourceSQL = "sql"
)

// Profile describes one named dataset source. Type is either "csv" with
// Path set, or "sql" with Driver, DSN and Table set.
type Profile struct {
	Name   string
	Type   string
	Path   string
	Driver string
	DSN    string
	Table  string
}

// Registry resolves dataset profiles from an ini file, one section per
// profile.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := pr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &Profile{
		Name:   name,
		Type:   section.Key("type").MustString(SourceCSV),
		Path:   section.Key("path").String(),
		Driver: section.Key("driver").String(),
		DSN:    section.Key("dsn").String(),
		Table:  section.Key("table").String(),
	}

	switch profile.Type {
	case SourceCSV:
		if profile.Path == "" {
			return nil, fmt.Errorf("profile %s: csv source requires a path", name)
		}
	case SourceSQL:
		if profile.Driver == "" || profile.DSN == "" || profile.Table == "" {
			return nil, fmt.Errorf("profile %s: sql source requires driver, dsn and table", name)
		}
	default:
		return nil, fmt.Errorf("profile %s: unsupported source type %q", name, profile.Type)
	}

	return profile, nil
}
