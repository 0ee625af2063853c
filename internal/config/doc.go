// Package config manages user-level settings stored at ~/.topix/config.yaml.
// Values can be overridden by TOPIX_* environment variables, with dots in
// keys replaced by underscores (topic.default_choice → TOPIX_TOPIC_DEFAULT_CHOICE).
package config
