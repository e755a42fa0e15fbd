// Package debug holds environment-toggled debug switches for the module.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Shape  bool
	Scan   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("TREEBIND_DEBUG_DECODE")
	d.Shape = boolEnv("TREEBIND_DEBUG_SHAPE")
	d.Scan = boolEnv("TREEBIND_DEBUG_SCAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Shape() bool {
	return d.Shape
}
func Scan() bool {
	return d.Scan
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
