package config

import "strings"

// ResolveConfig merges project/global configs with built-in defaults.
// Precedence per key: project > global > defaults, then clamp the timeout to
// bounds and reject unknown jurisdictions.
func ResolveConfig(project RawConfig, global RawConfig) ResolvedConfig {
	defaults := DefaultResolvedConfig()

	url := resolveString(
		valueFromService(project, func(s RawService) *string { return s.URL }),
		valueFromService(global, func(s RawService) *string { return s.URL }),
		defaults.Service.URL,
	)
	timeout := resolveIntWithBounds(
		valueFromServiceInt(project, func(s RawService) *int { return s.RequestTimeoutSeconds }),
		valueFromServiceInt(global, func(s RawService) *int { return s.RequestTimeoutSeconds }),
		defaults.Service.RequestTimeoutSeconds,
		MinRequestTimeoutSeconds,
		MaxRequestTimeoutSeconds,
	)
	outputDir := resolveString(
		valueFromReport(project, func(r RawReport) *string { return r.OutputDir }),
		valueFromReport(global, func(r RawReport) *string { return r.OutputDir }),
		defaults.Report.OutputDir,
	)
	jurisdiction := resolveJurisdiction(project.Jurisdiction, global.Jurisdiction, defaults.Jurisdiction)

	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		Service: ResolvedService{
			URL:                   strings.TrimRight(url, "/"),
			RequestTimeoutSeconds: timeout,
		},
		Report: ResolvedReport{
			OutputDir: outputDir,
		},
		Jurisdiction: jurisdiction,
	}
}

func valueFromService(cfg RawConfig, pick func(RawService) *string) *string {
	if cfg.Service == nil {
		return nil
	}
	return pick(*cfg.Service)
}

func valueFromServiceInt(cfg RawConfig, pick func(RawService) *int) *int {
	if cfg.Service == nil {
		return nil
	}
	return pick(*cfg.Service)
}

func valueFromReport(cfg RawConfig, pick func(RawReport) *string) *string {
	if cfg.Report == nil {
		return nil
	}
	return pick(*cfg.Report)
}

func resolveJurisdiction(projectVal *string, globalVal *string, defaultVal string) string {
	if j, ok := normalizeJurisdiction(projectVal); ok {
		return j
	}
	if j, ok := normalizeJurisdiction(globalVal); ok {
		return j
	}
	return defaultVal
}

func normalizeJurisdiction(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	j := strings.ToLower(strings.TrimSpace(*value))
	switch j {
	case JurisdictionQatar, JurisdictionUAE, JurisdictionSaudi:
		return j, true
	default:
		return "", false
	}
}

func resolveString(projectVal *string, globalVal *string, defaultVal string) string {
	if value := normalizeString(projectVal); value != "" {
		return value
	}
	if value := normalizeString(globalVal); value != "" {
		return value
	}
	return defaultVal
}

func resolveIntWithBounds(projectVal *int, globalVal *int, defaultVal int, min int, max int) int {
	if projectVal != nil {
		return clampInt(*projectVal, min, max)
	}
	if globalVal != nil {
		return clampInt(*globalVal, min, max)
	}
	return clampInt(defaultVal, min, max)
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func normalizeString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
