// Package docs registers the generated swagger specification.
// Code generated by swag; regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/check": {
            "get": {
                "tags": ["auth"],
                "summary": "Check admin status by email",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Admin dashboard statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "List non-admin users",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users/{id}": {
            "delete": {
                "tags": ["admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a user",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/news": {
            "get": {
                "tags": ["news"],
                "security": [{"BearerAuth": []}],
                "summary": "List all news",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["news"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a news item",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin/news/{id}": {
            "get": {
                "tags": ["news"],
                "security": [{"BearerAuth": []}],
                "summary": "Get a news item",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["news"],
                "security": [{"BearerAuth": []}],
                "summary": "Update a news item",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["news"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a news item",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/news": {
            "get": {
                "tags": ["news"],
                "summary": "List published news",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/predict": {
            "post": {
                "tags": ["predict"],
                "summary": "Classify a single image",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/predict-batch": {
            "post": {
                "tags": ["predict"],
                "summary": "Classify a batch of images",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/classes": {
            "get": {
                "tags": ["predict"],
                "summary": "List model classes",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/model-info": {
            "get": {
                "tags": ["predict"],
                "summary": "Model information",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "GradeFresh API",
	Description:      "Produce quality grading backend: auth, admin management, news CMS, and image classification.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
