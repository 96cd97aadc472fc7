package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	positionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "HorizontalPosition",
		Fields: graphql.Fields{
			"altitude_deg": &graphql.Field{Type: graphql.Float},
			"azimuth_deg":  &graphql.Field{Type: graphql.Float},
		},
	})

	starType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Star",
		Fields: graphql.Fields{
			"name":         &graphql.Field{Type: graphql.String},
			"ra_deg":       &graphql.Field{Type: graphql.Float},
			"dec_deg":      &graphql.Field{Type: graphql.Float},
			"magnitude":    &graphql.Field{Type: graphql.Float},
			"distance_ly":  &graphql.Field{Type: graphql.Float},
			"color_temp_k": &graphql.Field{Type: graphql.Float},
			"rgb_hex":      &graphql.Field{Type: graphql.String},
			"aliases":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	positionedStarType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PositionedStar",
		Fields: graphql.Fields{
			"star":     &graphql.Field{Type: starType},
			"position": &graphql.Field{Type: positionType},
		},
	})

	bodyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Body",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.String},
			"name": &graphql.Field{Type: graphql.String},
			"type": &graphql.Field{Type: graphql.String},
		},
	})

	positionedBodyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PositionedBody",
		Fields: graphql.Fields{
			"body":        &graphql.Field{Type: bodyType},
			"position":    &graphql.Field{Type: positionType},
			"magnitude":   &graphql.Field{Type: graphql.Float},
			"phase":       &graphql.Field{Type: graphql.Float},
			"distance_au": &graphql.Field{Type: graphql.Float},
			"distance_km": &graphql.Field{Type: graphql.Float},
		},
	})

	constellationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Constellation",
		Fields: graphql.Fields{
			"name":  &graphql.Field{Type: graphql.String},
			"stars": &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	eventType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AstronomyEvent",
		Fields: graphql.Fields{
			"type":        &graphql.Field{Type: graphql.String},
			"body":        &graphql.Field{Type: graphql.String},
			"time":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	// Shared optional filter arguments for visibility queries.
	filterFromArgs := func(p graphql.ResolveParams) domain.FilterOptions {
		var opts domain.FilterOptions
		if v, ok := p.Args["min_alt"].(float64); ok {
			opts.MinAltitude = &v
		}
		if v, ok := p.Args["max_mag"].(float64); ok {
			opts.MaxMagnitude = &v
		}
		if v, ok := p.Args["limit"].(int); ok {
			opts.Limit = v
		}
		return opts
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"visibleStars": &graphql.Field{
				Type:        graphql.NewList(positionedStarType),
				Description: "Stars above the horizon for an observer",
				Args: graphql.FieldConfigArgument{
					"lat":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"time":    &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"min_alt": &graphql.ArgumentConfig{Type: graphql.Float},
					"max_mag": &graphql.ArgumentConfig{Type: graphql.Float},
					"limit":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lat := p.Args["lat"].(float64)
					lon := p.Args["lon"].(float64)
					instant := p.Args["time"].(string)
					frame, err := deps.Stars.Visible(p.Context, lat, lon, instant, withHorizonDefault(filterFromArgs(p)))
					if err != nil {
						return nil, err
					}
					return frame.Stars, nil
				},
			},
			"star": &graphql.Field{
				Type:        positionedStarType,
				Description: "One star with its current horizontal position",
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lat":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"time": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name := p.Args["name"].(string)
					lat := p.Args["lat"].(float64)
					lon := p.Args["lon"].(float64)
					instant := p.Args["time"].(string)
					return deps.Stars.Get(p.Context, name, lat, lon, instant)
				},
			},
			"visibleBodies": &graphql.Field{
				Type:        graphql.NewList(positionedBodyType),
				Description: "Sun, moon, and planet positions for an observer",
				Args: graphql.FieldConfigArgument{
					"lat":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"time":    &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"min_alt": &graphql.ArgumentConfig{Type: graphql.Float},
					"max_mag": &graphql.ArgumentConfig{Type: graphql.Float},
					"limit":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lat := p.Args["lat"].(float64)
					lon := p.Args["lon"].(float64)
					instant := p.Args["time"].(string)
					frame, err := deps.Bodies.Visible(p.Context, lat, lon, instant, withHorizonDefault(filterFromArgs(p)))
					if err != nil {
						return nil, err
					}
					return frame.Bodies, nil
				},
			},
			"constellations": &graphql.Field{
				Type:        graphql.NewList(constellationType),
				Description: "All constellation figures",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Constellations.List(p.Context), nil
				},
			},
			"events": &graphql.Field{
				Type:        graphql.NewList(eventType),
				Description: "Rise/set and moon-phase events inside a window",
				Args: graphql.FieldConfigArgument{
					"lat":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"start":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"end":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"targets": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lat := p.Args["lat"].(float64)
					lon := p.Args["lon"].(float64)
					start := p.Args["start"].(string)
					end := p.Args["end"].(string)
					var targets []string
					if raw, ok := p.Args["targets"].([]interface{}); ok {
						for _, t := range raw {
							if s, ok := t.(string); ok {
								targets = append(targets, s)
							}
						}
					}
					return deps.Events.Find(p.Context, lat, lon, start, end, targets)
				},
			},
			"locateStar": &graphql.Field{
				Type:        graphql.String,
				Description: "IAU constellation containing a star",
				Args: graphql.FieldConfigArgument{
					"star": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Constellations.Locate(p.Context, p.Args["star"].(string))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
