// Package gui is the raylib frontend of trailviz.
//
// [Window] implements app.Window: it owns the OS window, maps raylib key
// and mouse state onto control.Input, draws through [Surface] and writes
// screenshots. The status-line font is optional; without it the line is
// simply not drawn.
package gui
