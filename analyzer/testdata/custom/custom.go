package custom

func memoize[T any](f func() T, deps []any) T { return f() }

func cell[T any](v T) (T, func(T)) { return v, func(T) {} }

func compute(query string, limit int) string {
	return memoize(func() string {
		return query
	}, []any{query, limit}) // want `Unnecessary dependency 'limit' \(md:unn\)`
}

func stableCell(query string) string {
	val, set := cell(query)

	return memoize(func() string {
		set(val)

		return val
	}, []any{set})
}
