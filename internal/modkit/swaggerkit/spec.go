package swaggerkit

// baseSpec lists the public routes; serveDocJSON fills in servers and the shared error responses
const baseSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "figurefriday API", "version": "1.0"},
  "tags": [{"name": "Meta"}, {"name": "Survey"}, {"name": "Violations"}],
  "paths": {
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "responses": {"200": {"description": "ok"}, "503": {"description": "a backend did not answer"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}},
    "/survey/fields": {"get": {"tags": ["Survey"], "summary": "Survey fields grouped by type", "responses": {"200": {"description": "ok"}}}},
    "/survey/selection/default": {"get": {"tags": ["Survey"], "summary": "Initial dashboard selection", "responses": {"200": {"description": "ok"}}}},
    "/survey/bar-chart": {"post": {"tags": ["Survey"], "summary": "Stacked bar chart for an attribute and a variable", "requestBody": {"$ref": "#/components/requestBodies/Selection"}, "responses": {"200": {"description": "ok"}, "404": {"description": "unknown field"}, "422": {"description": "not one attribute and one variable"}}}},
    "/survey/crosstab": {"post": {"tags": ["Survey"], "summary": "Raw cross-tab counts and cumulative fractions", "requestBody": {"$ref": "#/components/requestBodies/Selection"}, "responses": {"200": {"description": "ok"}}}},
    "/violations": {"get": {"tags": ["Violations"], "summary": "Selector entries in snapshot order", "responses": {"200": {"description": "ok"}}}},
    "/violations/{index}": {"get": {"tags": ["Violations"], "summary": "Dashboard view for one violation code", "parameters": [{"name": "index", "in": "path", "required": true, "schema": {"type": "integer", "minimum": 0}}], "responses": {"200": {"description": "ok"}, "404": {"description": "index out of range"}}}},
    "/violations/select": {"post": {"tags": ["Violations"], "summary": "Move the selector", "requestBody": {"required": true, "content": {"application/json": {"schema": {"type": "object", "required": ["action"], "properties": {"index": {"type": "integer"}, "action": {"type": "string", "enum": ["jump", "next", "prev"]}, "target": {"type": "integer"}}}}}}, "responses": {"200": {"description": "ok"}, "422": {"description": "index out of range"}}}},
    "/violations/selection/default": {"get": {"tags": ["Violations"], "summary": "Initial selector state", "responses": {"200": {"description": "ok"}}}}
  },
  "components": {
    "requestBodies": {
      "Selection": {"required": true, "content": {"application/json": {"schema": {"type": "object", "required": ["attribute", "variable"], "properties": {"attribute": {"type": "string", "example": "Age"}, "variable": {"type": "string", "example": "Steak Preparation"}, "transpose": {"type": "boolean"}, "show_ref": {"type": "boolean"}}}}}}
    }
  }
}`
