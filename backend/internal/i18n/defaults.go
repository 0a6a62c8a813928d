package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// loadDefaults 解析内置翻译
func loadDefaults() (map[Language]map[string]string, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(defaultsYAML, &raw); err != nil {
		return nil, fmt.Errorf("解析内置翻译失败: %w", err)
	}

	out := make(map[Language]map[string]string, len(Supported))
	for _, lang := range Supported {
		out[lang] = make(map[string]string, len(raw[string(lang)]))
		for k, v := range raw[string(lang)] {
			out[lang][k] = v
		}
	}
	return out, nil
}
