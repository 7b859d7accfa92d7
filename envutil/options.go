package envutil

// Option modifies a Reader after the raw value has been read.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for an unset variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate rejects values for which f returns an error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}
