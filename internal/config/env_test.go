package config

import (
	"os"

	"github.com/stretchr/testify/suite"
)

// envSuite clears the listed variables before each test and restores them
// afterwards.
type envSuite struct {
	suite.Suite
	vars        []string
	originalEnv map[string]string
}

func (s *envSuite) SetupTest() {
	s.originalEnv = make(map[string]string)
	for _, env := range s.vars {
		if val, exists := os.LookupEnv(env); exists {
			s.originalEnv[env] = val
		}
		s.Require().NoError(os.Unsetenv(env))
	}
}

func (s *envSuite) TearDownTest() {
	for _, env := range s.vars {
		s.Require().NoError(os.Unsetenv(env))
	}
	for env, val := range s.originalEnv {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *envSuite) setEnv(vars map[string]string) {
	for key, value := range vars {
		s.Require().NoError(os.Setenv(key, value))
	}
}
