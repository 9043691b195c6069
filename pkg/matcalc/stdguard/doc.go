// Package stdguard temporarily redirects the process's standard output to
// the null device. The native engine writes progress chatter straight to
// file descriptor 1, bypassing os.Stdout and any Go-level capture; silencing
// it requires descriptor surgery: duplicate fd 1 aside, point it at the null
// device, and restore the saved descriptor afterwards.
//
// Restoration is guaranteed on every exit path, including panics, when the
// While form is used:
//
//	err := stdguard.While(func() error {
//	    return session.ExecuteCommand("read-thermodyn-database")
//	})
//
// Redirection affects the whole process, every thread included. That is the
// point, and also the caveat.
package stdguard
