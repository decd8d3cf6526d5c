package main

import (
	"github.com/joho/godotenv"
	"github.com/myrjola/ftracker/internal/errors"
	"io/fs"
	"log/slog"
)

const defaultEnvFile = ".env"

// withDotenv layers the variables of the dotenv file named by FTRACKER_ENV_FILE (default .env) under lookupEnv.
// The real environment wins. A missing file is not an error.
func withDotenv(lookupEnv func(string) (string, bool)) (func(string) (string, bool), error) {
	path, ok := lookupEnv("FTRACKER_ENV_FILE")
	if !ok || path == "" {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lookupEnv, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read env file", slog.String("path", path))
	}

	return func(key string) (string, bool) {
		if v, found := lookupEnv(key); found {
			return v, true
		}
		v, found := vars[key]
		return v, found
	}, nil
}
