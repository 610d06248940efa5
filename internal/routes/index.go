package routes

// Flatten builds the keyword lookup index from grouped routes. Groups are
// visited in the given order and each keyword overwrites any earlier entry,
// so groups later in the configured order win conflicts. This keeps
// resolution a single map lookup instead of a scan over every group.
func Flatten(groups []Group) map[string]Route {
	index := make(map[string]Route)
	for _, group := range groups {
		for keyword, route := range group.Routes {
			index[keyword] = route
		}
	}
	return index
}
