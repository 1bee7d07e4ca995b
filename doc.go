// Package here provides call-site notices for quick, print-style tracing and
// debugging. It's meant for development time: drop a notice into some code,
// run it, read the output, and remove the notice when done.
//
// There are two kinds of notices. A timestamp notice says "I was here", along
// with a sequence number and the time elapsed since the previous timestamp
// notice, which makes it useful for minimalist profiling.
//
//	func (s *Server) handle() {
//	here.TS()
//	    ...
//	}
//
//	[TIMESTAMP] #=0001, diff=0.000463, at=1451615389.505411    	(in /src/server.go:12:in 'handle')
//
// A value notice shows a labeled value, and the type and method it was
// observed in. Values can be given directly, or by reference, in which case
// the reference name is used as the label.
//
//	func (g *Greeter) Hello(name string) {
//	here.Val(here.Ref("name", func() any { return name }))
//	here.Val(len(name), here.Label("Length"))
//	    ...
//	}
//
//	[Greeter#Hello] name: Charlie    	(in /src/greeter.go:12:in 'Hello')
//	[Greeter#Hello] Length: 7    	(in /src/greeter.go:13:in 'Hello')
//
// Notices are printed to the console, and can also be written to a log sink:
// a logger provided per notice, a sink provided by the host environment, or a
// file or stream. Options control the routing, see [Options] for details. If
// the host environment reports that it's in production, notices are
// suppressed entirely, unless forced with the [Production] option.
//
// Notices are synchronous, and safe to emit from concurrent goroutines.
package here
