// Package uikit resolves and manages the wallet UI kit configuration of a
// generated app: which kit to use, its settings, and the runtime assets
// (provider component, stylesheet) the kit needs.
package uikit

import (
	"log"
)

// Well-known kit names. "custom" and "none" carry no native defaults.
const (
	KitCustom = "custom"
	KitNone   = "none"
)

// Config is one wallet UI kit configuration.
type Config struct {
	KitName  string         `json:"kit_name"`
	Settings map[string]any `json:"settings,omitempty"`
	// CustomCode is user-authored wiring code. It travels with the config
	// untouched and never influences kit resolution.
	CustomCode string `json:"custom_code,omitempty"`
}

// NativeLoader supplies the kit's built-in default settings.
type NativeLoader func(kitName string) (map[string]any, error)

// logf is the package warning sink, overridable in tests.
var logf = log.Printf

// ResolveKitConfig merges programmatic settings over the kit's native
// defaults. Native loading is skipped for custom/none kits and when no
// loader is available; a failing native load is logged and resolution
// continues with the programmatic settings alone.
func ResolveKitConfig(kitName string, programmatic map[string]any, loader NativeLoader) map[string]any {
	base := map[string]any{}
	if loader != nil && kitName != KitCustom && kitName != KitNone {
		native, err := loader(kitName)
		if err != nil {
			logf("uikit: native config load for %q failed, continuing without: %v", kitName, err)
		} else {
			for k, v := range native {
				base[k] = v
			}
		}
	}
	for k, v := range programmatic {
		base[k] = v
	}
	return base
}

// ResolveFullConfiguration computes the effective kit configuration from the
// three override layers. Kit name precedence: programmatic > initial >
// app-service > "custom". Settings merge with the app-service config as the
// base. CustomCode passes through from the programmatic layer verbatim.
func ResolveFullConfiguration(programmatic *Config, initialKitName string, appService *Config, loader NativeLoader) *Config {
	kit := KitCustom
	if appService != nil && appService.KitName != "" {
		kit = appService.KitName
	}
	if initialKitName != "" {
		kit = initialKitName
	}
	if programmatic != nil && programmatic.KitName != "" {
		kit = programmatic.KitName
	}

	merged := map[string]any{}
	if appService != nil {
		for k, v := range appService.Settings {
			merged[k] = v
		}
	}
	var progSettings map[string]any
	var customCode string
	if programmatic != nil {
		progSettings = programmatic.Settings
		customCode = programmatic.CustomCode
	}
	for k, v := range ResolveKitConfig(kit, progSettings, loader) {
		merged[k] = v
	}

	return &Config{
		KitName:    kit,
		Settings:   merged,
		CustomCode: customCode,
	}
}
