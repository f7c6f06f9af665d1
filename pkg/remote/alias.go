package remote

import (
	"fmt"
	"strings"

	"jeka/pkg/props"
)

// AliasPrefix is the key namespace under which aliases are declared in
// the global properties file.
const AliasPrefix = "jeka.remote.alias."

const aliasSigil = "@"

// AliasNotFoundError reports an alias token with no matching declaration.
// Known lists the alias keys that do exist, as a diagnostic.
type AliasNotFoundError struct {
	Name  string
	Known []string
}

func (e *AliasNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("alias %q is not defined: add %s%s=<url> to the global properties file", e.Name, AliasPrefix, e.Name)
	}
	return fmt.Sprintf("alias %q is not defined, known aliases: %s", e.Name, strings.Join(e.Known, ", "))
}

// ExpandAlias substitutes a leading @name token with its declaration from
// the global properties. Tokens without the sigil are returned unchanged,
// so expanding an already-expanded reference is a no-op.
func ExpandAlias(token string, global *props.Store) (string, error) {
	if !strings.HasPrefix(token, aliasSigil) {
		return token, nil
	}
	name := strings.TrimPrefix(token, aliasSigil)
	v, ok := global.Get(AliasPrefix + name)
	if !ok || v == "" {
		return "", &AliasNotFoundError{Name: name, Known: global.Keys(AliasPrefix)}
	}
	return v, nil
}
