package profile

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema describing the profile config format.
// Emit it once and point editors or CI validation at it:
//
//	schema := profile.Schema()
//	data, _ := json.MarshalIndent(schema, "", "  ")
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Config{})
}
