package box

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type. It is the failure payload of Option.
type Unit = struct{}

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument. It is the identity of Comp.
func Iden[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}
