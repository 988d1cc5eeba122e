// Package tui implements the interactive dashboard of mpcalc.
//
// The dashboard runs one operation on the selected engines and shows, while
// they run, a row per engine with its status and duration, the result once
// every engine has finished, and live runtime metrics with CPU and memory
// sparklines. The operation can be rerun from the keyboard.
package tui
