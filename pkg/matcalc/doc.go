// Package matcalc exposes a Go API over the proprietary MatCalc
// thermodynamics engine, which ships as a closed-source shared library
// (mc_core). The package loads the vendor library at run time, binds its six
// exported entry points, and wraps them in a small session protocol: textual
// commands in, integer return codes out.
//
// No thermodynamic computation happens here. Equilibrium solving, database
// parsing, and phase-stability analysis all live inside the native engine;
// this package is protocol glue with defined error semantics.
//
// A Session owns the loaded library handle. Constructing one changes the
// process working directory to the application directory, because the engine
// resolves databases and auxiliary files relative to its home. That is shared
// process state: run at most one Session per process, and treat every method
// as a blocking foreign call with no cancellation.
//
//	s, err := matcalc.Open(matcalc.Config{AppDir: "/opt/matcalc"})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Init(); err != nil {
//	    return err
//	}
//	if err := s.ExecuteCommand("open-thermodyn-database mc_fe.tdb"); err != nil {
//	    return err
//	}
package matcalc
