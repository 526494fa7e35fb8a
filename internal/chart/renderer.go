package chart

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	helmchart "helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/engine"
)

//go:embed embedded
var chartFS embed.FS

// chartRoot is the directory inside chartFS holding the chart files.
const chartRoot = "embedded"

// Load returns the embedded StorageClass chart.
func Load() (*helmchart.Chart, error) {
	var files []*loader.BufferedFile

	err := fs.WalkDir(chartFS, chartRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, readErr := chartFS.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read embedded chart file %s: %w", path, readErr)
		}

		// Helm expects file names relative to the chart root.
		files = append(files, &loader.BufferedFile{
			Name: strings.TrimPrefix(path, chartRoot+"/"),
			Data: data,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded chart: %w", err)
	}

	loadedChart, err := loader.LoadFiles(files)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded chart: %w", err)
	}

	return loadedChart, nil
}

// Render evaluates the embedded chart for the given release name and values.
// Values are deep-merged over the chart's defaults. The result is the combined
// non-empty manifests, or nil when every template renders empty.
func Render(releaseName string, values Values) ([]byte, error) {
	loadedChart, err := Load()
	if err != nil {
		return nil, err
	}
	return renderChart(loadedChart, releaseName, values)
}

// renderChart uses the helm engine to render the chart with values.
func renderChart(ch *helmchart.Chart, releaseName string, values Values) ([]byte, error) {
	chartDefaults := make(Values)
	if len(ch.Values) > 0 {
		chartDefaults = Values(ch.Values)
	}

	mergedValues := deepMerge(chartDefaults, values)

	chartValues := chartutil.Values(mergedValues.ToMap())

	// StorageClass is cluster-scoped; the namespace only feeds
	// .Release.Namespace, which the chart never references.
	releaseOptions := chartutil.ReleaseOptions{
		Name:      releaseName,
		Namespace: "default",
		IsInstall: true,
	}

	capabilities := chartutil.DefaultCapabilities.Copy()
	capabilities.KubeVersion.Version = "v1.31.0"
	capabilities.KubeVersion.Major = "1"
	capabilities.KubeVersion.Minor = "31"

	valuesToRender, err := chartutil.ToRenderValues(ch, chartValues, releaseOptions, capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare values: %w", err)
	}

	eng := engine.Engine{
		Strict:   false,
		LintMode: false,
	}

	rendered, err := eng.Render(ch, valuesToRender)
	if err != nil {
		return nil, fmt.Errorf("failed to render templates: %w", err)
	}

	// Combine rendered manifests, skipping NOTES.txt and empty documents.
	var combined bytes.Buffer
	for name, content := range rendered {
		if filepath.Base(name) == "NOTES.txt" {
			continue
		}

		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			continue
		}

		if combined.Len() > 0 {
			combined.WriteString("\n---\n")
		}
		combined.WriteString(trimmed)
		combined.WriteString("\n")
	}

	return combined.Bytes(), nil
}
