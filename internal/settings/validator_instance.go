package settings

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator used by the
// settings package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A theme repository may be an http(s) URL, an scp-style SSH
		// remote, or a local path (used by tests and mirrors).
		_ = v.RegisterValidation("repo_url", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			if strings.TrimSpace(raw) == "" {
				return false
			}

			if parsed, err := url.Parse(raw); err == nil {
				scheme := strings.ToLower(parsed.Scheme)
				if (scheme == "http" || scheme == "https") && parsed.Host != "" {
					return true
				}
			}

			if sshGitPattern.MatchString(raw) {
				return true
			}

			return filepath.IsAbs(raw)
		})

		validateInst = v
	})

	return validateInst
}
