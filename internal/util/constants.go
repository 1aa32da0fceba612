package util

const (
	// DateFormat es el formato de fecha que consume el front-end (YYYY-MM-DD).
	DateFormat = "2006-01-02"
)
