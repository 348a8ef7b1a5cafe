package config

// Package config builds the immutable dashboard configuration from command line
// flags and an optional YAML file. The result is created once at startup and
// passed by pointer to every component.
