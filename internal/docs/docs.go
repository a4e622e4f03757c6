// Package docs registra la especificación OpenAPI del catálogo para swag.
// Mantener en sync con las anotaciones de internal/domain/animals/handler.go.
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
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/animalResponse"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Crear animal",
                "parameters": [
                    {
                        "description": "Animal",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/createAnimalRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Obtener animal",
                "parameters": [
                    {"type": "string", "description": "Animal ID", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animalResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Actualizar animal",
                "parameters": [
                    {"type": "string", "description": "Animal ID", "name": "animalID", "in": "path", "required": true},
                    {
                        "description": "Campos a modificar",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/updateAnimalRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/actions/{action}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Invocar comportamiento",
                "parameters": [
                    {"type": "string", "description": "Animal ID", "name": "animalID", "in": "path", "required": true},
                    {"type": "string", "description": "eat | sleep | meow | bark", "name": "action", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/actionResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "createAnimalRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["animal", "cat", "smart_dog"]},
                "name": {"type": "string"},
                "age": {"type": "integer", "minimum": 0},
                "fur_color": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "updateAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "integer", "minimum": 0},
                "fur_color": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "animalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string", "enum": ["animal", "cat", "smart_dog"]},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "fur_color": {"type": "string"},
                "color": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "actionResponse": {
            "type": "object",
            "properties": {
                "animal_id": {"type": "string"},
                "action": {"type": "string", "enum": ["eat", "sleep", "meow", "bark"]},
                "output": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pet-behavior-demo API",
	Description:      "Catálogo de entidades (animal, cat, smart_dog) con invocación de comportamientos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
