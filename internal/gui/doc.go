// Package gui is the raylib desktop window for the calculator.
//
// The window mirrors the terminal UI: an angle field with a Calculate
// button, the result panel, an optional lookup table listing and a sine
// wave with the entered angle marked. All state lives in a [calc.Session];
// this package only maps input events onto it and draws.
package gui
