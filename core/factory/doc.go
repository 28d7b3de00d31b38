// Package factory provides a small generic registry used to build policy
// components from configuration. A component is described by a type string
// and a map of raw parameters. Builders decode the parameters into typed
// structs and return the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[rules.EngineRule]()
//	reg.Register("mileage", func(params map[string]any) (rules.EngineRule, error) {
//	    var c struct{ Limit int `json:"limit"` }
//	    if err := factory.Decode(params, &c); err != nil {
//	        return nil, err
//	    }
//	    return rules.MileageRule{Limit: c.Limit}, nil
//	})
//	r, err := reg.Create(factory.Spec{Type: "mileage", Params: map[string]any{"limit": 30000}})
package factory
