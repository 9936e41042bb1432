/*
Package config loads conlog settings from YAML and the environment.

A file looks like:

	level: verbose1
	async: true
	color: auto
	timestamps: true
	timestamp_format: "15:04:05.000"
	level_tags: false
	level_colors:
	  warning: brightyellow
	  info: cyan

Keys that are absent keep their defaults. After the file is read, the
CONLOG_LEVEL, CONLOG_ASYNC and CONLOG_COLOR environment variables
override the matching keys.
*/
package config
