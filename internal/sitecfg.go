package internal

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

// LoadSiteConfiguration reads the site-specific OEE configuration from a YAML
// file. An empty path yields the defaults; a missing or unreadable file is an
// error, so a misconfigured deployment fails loudly instead of silently
// running with default thresholds.
func LoadSiteConfiguration(path string) (datamodel.SiteConfiguration, error) {
	configuration := datamodel.DefaultSiteConfiguration()

	if path == "" {
		zap.S().Infof("No site configuration file set, using defaults")
		return configuration, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return datamodel.SiteConfiguration{}, err
	}

	err = yaml.Unmarshal(content, &configuration)
	if err != nil {
		return datamodel.SiteConfiguration{}, err
	}

	zap.S().Infof("Loaded site configuration from %s", path)
	return configuration, nil
}
