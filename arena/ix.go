package arena

import "fmt"

func (ix Ix[T]) String() string {
	return fmt.Sprintf("Ix(%d)", ix.offsetValue())
}

// Get is the free-function form of the Ix::get accessor from the API
// surface table: Get(ix, region) returns a reference to the value ix
// identifies, panicking on failure. It is a thin wrapper over
// Region.Get — see that method for the authoritative implementation,
// required to live on Region because only Region's own methods can carry
// the PT type parameter (see Traceable's doc comment).
func Get[T any, PT interface {
	*T
	Traceable[T]
}](ix Ix[T], r *Region[T, PT]) *T {
	return r.Get(ix)
}

func GetMut[T any, PT interface {
	*T
	Traceable[T]
}](ix Ix[T], r *Region[T, PT]) *T {
	return r.GetMut(ix)
}

func TryGet[T any, PT interface {
	*T
	Traceable[T]
}](ix Ix[T], r *Region[T, PT]) (*T, error) {
	return r.TryGet(ix)
}

func TryGetMut[T any, PT interface {
	*T
	Traceable[T]
}](ix Ix[T], r *Region[T, PT]) (*T, error) {
	return r.TryGetMut(ix)
}

func CheckRegion[T any, PT interface {
	*T
	Traceable[T]
}](ix Ix[T], r *Region[T, PT]) error {
	return r.CheckRegion(ix)
}
