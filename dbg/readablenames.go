package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it. Coordinates are hard to tell apart at a
// glance in a long listing; names are not.

var memo map[interface{}]string
var taken map[string]struct{}

// Fresh draws before falling back to a numbered name
const maxDraws = 16

var drawName = func() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

func init() {
	memo = make(map[interface{}]string)
	taken = make(map[string]struct{})
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	for i := 0; i < maxDraws; i++ {
		if r := drawName(); !isTaken(r) {
			return remember(obj, r)
		}
	}
	// The name space is crowded, so number the last draw
	base := drawName()
	for n := 2; ; n++ {
		if r := fmt.Sprintf("%s%d", base, n); !isTaken(r) {
			return remember(obj, r)
		}
	}
}

func isTaken(name string) bool {
	_, ok := taken[name]
	return ok
}

func remember(obj interface{}, name string) string {
	memo[obj] = name
	taken[name] = struct{}{}
	return name
}
