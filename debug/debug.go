package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Correlate bool
	Rebuild   bool
	Moves     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Correlate = boolEnv("REDLINE_DEBUG_CORRELATE")
	d.Rebuild = boolEnv("REDLINE_DEBUG_REBUILD")
	d.Moves = boolEnv("REDLINE_DEBUG_MOVES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Correlate() bool {
	return d.Correlate
}
func Rebuild() bool {
	return d.Rebuild
}
func Moves() bool {
	return d.Moves
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
