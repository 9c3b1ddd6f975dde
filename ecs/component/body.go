package component

// Body is the set of hittable volumes an actor exposes.
type Body []Volume

var BodyComponent = NewComponent[Body]()
