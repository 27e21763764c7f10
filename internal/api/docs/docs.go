package docs

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	apicontrollers "github.com/drujensen/taskcase/internal/api/controllers"

	"github.com/go-openapi/spec"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/swaggo/swag"
)

const errorDefinition = "Error"

// Route binds an interactor to the method and path serving it. Path uses the
// {param} syntax and is relative to the document base path.
type Route struct {
	Method        string
	Path          string
	SuccessStatus int
	Interactor    usecase.Interactor
}

// Build describes routes as a swagger 2.0 document. Operation ids, descriptions, tags
// and error responses are read from the interactors.
func Build(title, version, basePath string, routes []Route) *spec.Swagger {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:   title,
					Version: version,
				},
			},
			BasePath: basePath,
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Paths:    &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{
				errorDefinition: *new(spec.Schema).
					Typed("object", "").
					SetProperty("error", *spec.StringProperty()).
					SetProperty("status", *spec.StringProperty()),
			},
		},
	}

	for _, r := range routes {
		item := doc.Paths.Paths[r.Path]
		op := operation(doc.Definitions, r)

		switch r.Method {
		case http.MethodGet:
			item.Get = op
		case http.MethodPost:
			item.Post = op
		case http.MethodPut:
			item.Put = op
		case http.MethodPatch:
			item.Patch = op
		case http.MethodDelete:
			item.Delete = op
		}

		doc.Paths.Paths[r.Path] = item
	}

	return doc
}

func operation(defs spec.Definitions, r Route) *spec.Operation {
	var (
		hasName           usecase.HasName
		hasDescription    usecase.HasDescription
		hasTags           usecase.HasTags
		hasInput          usecase.HasInputPort
		hasOutput         usecase.HasOutputPort
		hasExpectedErrors usecase.HasExpectedErrors
	)

	op := new(spec.Operation)

	if usecase.As(r.Interactor, &hasName) {
		op.ID = hasName.Name()
	}

	if usecase.As(r.Interactor, &hasDescription) {
		op.WithDescription(hasDescription.Description())
	}

	if usecase.As(r.Interactor, &hasTags) && len(hasTags.Tags()) > 0 {
		op.WithTags(hasTags.Tags()...)
	}

	if usecase.As(r.Interactor, &hasInput) && hasInput.InputPort() != nil {
		addParams(op, defs, reflect.TypeOf(hasInput.InputPort()))
	}

	success := r.SuccessStatus
	if success == 0 {
		success = http.StatusOK
	}

	resp := spec.NewResponse().WithDescription(http.StatusText(success))
	if usecase.As(r.Interactor, &hasOutput) && hasOutput.OutputPort() != nil {
		resp.WithSchema(schemaOf(defs, reflect.TypeOf(hasOutput.OutputPort())))
	}
	op.RespondsWith(success, resp)

	if usecase.As(r.Interactor, &hasExpectedErrors) {
		for _, e := range hasExpectedErrors.ExpectedErrors() {
			code := apicontrollers.HTTPStatus(statusOf(e))
			op.RespondsWith(code, spec.NewResponse().
				WithDescription(http.StatusText(code)).
				WithSchema(spec.RefSchema("#/definitions/"+errorDefinition)))
		}
	}

	return op
}

// addParams turns fields tagged with path into path parameters and sends the
// json-tagged rest as the request body.
func addParams(op *spec.Operation, defs spec.Definitions, t reflect.Type) {
	t = indirect(t)
	if t.Kind() != reflect.Struct {
		op.AddParam(spec.BodyParam("body", schemaOf(defs, t)).AsRequired())
		return
	}

	hasBody := false
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name, ok := f.Tag.Lookup("path"); ok {
			typ, format := primitive(f.Type)
			op.AddParam(spec.PathParam(name).Typed(typ, format))
			continue
		}
		if _, ok := f.Tag.Lookup("json"); ok {
			hasBody = true
		}
	}

	if hasBody {
		op.AddParam(spec.BodyParam("body", schemaOf(defs, t)).AsRequired())
	}
}

// schemaOf returns the schema of t, registering named structs as definitions.
func schemaOf(defs spec.Definitions, t reflect.Type) *spec.Schema {
	t = indirect(t)

	switch {
	case t == reflect.TypeOf(time.Time{}):
		return spec.DateTimeProperty()
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return spec.ArrayProperty(schemaOf(defs, t.Elem()))
	case t.Kind() == reflect.Struct:
		if _, ok := defs[t.Name()]; !ok {
			defs[t.Name()] = spec.Schema{}

			s := new(spec.Schema).Typed("object", "")
			for i := 0; i < t.NumField(); i++ {
				f := t.Field(i)
				name := strings.Split(f.Tag.Get("json"), ",")[0]
				if name == "" || name == "-" {
					continue
				}
				s.SetProperty(name, *schemaOf(defs, f.Type))
			}
			defs[t.Name()] = *s
		}
		return spec.RefSchema("#/definitions/" + t.Name())
	}

	typ, format := primitive(t)
	return new(spec.Schema).Typed(typ, format)
}

func primitive(t reflect.Type) (string, string) {
	switch indirect(t).Kind() {
	case reflect.Int64, reflect.Uint64:
		return "integer", "int64"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "integer", "int32"
	case reflect.Float32:
		return "number", "float"
	case reflect.Float64:
		return "number", "double"
	case reflect.Bool:
		return "boolean", ""
	default:
		return "string", ""
	}
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func statusOf(err error) status.Code {
	if c, ok := err.(status.Code); ok {
		return c
	}

	var withStatus interface{ Status() status.Code }
	if errors.As(err, &withStatus) {
		return withStatus.Status()
	}
	return status.Unknown
}

type document struct {
	mu  sync.RWMutex
	raw []byte
}

func (d *document) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return string(d.raw)
}

var (
	registered   = &document{}
	registerOnce sync.Once
)

// Register publishes doc as the swag document served by echo-swagger. A later call
// replaces the published document.
func Register(doc *spec.Swagger) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, registered)
	})

	registered.mu.Lock()
	registered.raw = raw
	registered.mu.Unlock()
	return nil
}
