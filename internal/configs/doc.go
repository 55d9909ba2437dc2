// Package configs manages fluxvet's optional user configuration.
//
// Settings live in a TOML file under the user config directory and
// cover the sops binary, the manifest glob pattern, and a default KMS
// ARN for rotation. Command-line flags win over the SOPS_KMS_ARN
// environment variable, which wins over the config file.
package configs
