// Package utils holds the configuration and logging plumbing shared by execf
// commands: a Viper-backed ConfigurationLoader, a zap LoggerFactory, and a
// FlushingWriter for command output streams.
package utils
