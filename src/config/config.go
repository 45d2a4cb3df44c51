package config

const (
	NumFloors        = 5
	Capacity         = 2
	StartFloor       = 0
	LogLevel         = "info"
	EnvFile          = ".env"
	EnvPrefix        = "SWEEPSIM_"
)
