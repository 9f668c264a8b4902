// Package docs registra el spec OpenAPI servido en /swagger.
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
        "/health": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Liveness",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/questions": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Catálogo de preguntas del chequeo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/species": {
            "get": {
                "tags": [
                    "birds"
                ],
                "summary": "Sugerencias de especie",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/birds": {
            "get": {
                "tags": [
                    "birds"
                ],
                "summary": "Listar pájaros",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bird"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "birds"
                ],
                "summary": "Registrar pájaro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/bird"
                        }
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/createBird"
                        }
                    }
                ]
            }
        },
        "/birds/{birdID}": {
            "get": {
                "tags": [
                    "birds"
                ],
                "summary": "Ver pájaro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bird"
                        }
                    },
                    "404": {
                        "description": "bird not found"
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "patch": {
                "tags": [
                    "birds"
                ],
                "summary": "Editar pájaro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bird"
                        }
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "404": {
                        "description": "bird not found"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/updateBird"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "birds"
                ],
                "summary": "Borrar pájaro (arrastra historial y registros)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "bird not found"
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/birds/{birdID}/photo": {
            "get": {
                "tags": [
                    "birds"
                ],
                "summary": "Foto del pájaro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "imagen"
                    },
                    "404": {
                        "description": "photo not found"
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/birds/{birdID}/share": {
            "get": {
                "tags": [
                    "birds"
                ],
                "summary": "Texto para compartir",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/birds/{birdID}/checks": {
            "post": {
                "tags": [
                    "health"
                ],
                "summary": "Registrar chequeo de salud",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/healthLog"
                        }
                    },
                    "400": {
                        "description": "opción desconocida"
                    },
                    "404": {
                        "description": "bird not found"
                    },
                    "422": {
                        "description": "faltan categorías"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/recordCheck"
                        }
                    }
                ]
            }
        },
        "/birds/{birdID}/history": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Historial (3 últimos sin premium)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/birds/{birdID}/history.csv": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Exportar historial CSV",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "text/csv"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/birds/{birdID}/records": {
            "get": {
                "tags": [
                    "records"
                ],
                "summary": "Listar registros avanzados",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "records"
                ],
                "summary": "Agregar registro avanzado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "invalid input"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "birdID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/addRecord"
                        }
                    }
                ]
            }
        },
        "/library": {
            "get": {
                "tags": [
                    "library"
                ],
                "summary": "Listar artículos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/library/{articleID}": {
            "get": {
                "tags": [
                    "library"
                ],
                "summary": "Leer artículo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    },
                    "404": {
                        "description": "article not found"
                    }
                },
                "parameters": [
                    {
                        "name": "articleID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/settings": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "Ver configuración",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/settings/onboarding": {
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Marcar introducción como vista",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/settings/premium": {
            "put": {
                "tags": [
                    "settings"
                ],
                "summary": "Activar/desactivar premium",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/premium"
                        }
                    }
                ]
            }
        },
        "/settings/reminder": {
            "put": {
                "tags": [
                    "settings"
                ],
                "summary": "Configurar recordatorio diario",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "hora inválida"
                    },
                    "402": {
                        "description": "Premium",
                        "schema": {
                            "$ref": "#/definitions/notice"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/reminder"
                        }
                    }
                ]
            }
        }
    },
    "definitions": {
        "notice": {
            "type": "object",
            "properties": {
                "notice": {
                    "type": "string"
                },
                "capability": {
                    "type": "string"
                }
            }
        },
        "bird": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "age": {
                    "type": "string"
                },
                "acquire_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "GREEN",
                        "YELLOW",
                        "RED"
                    ]
                },
                "status_text": {
                    "type": "string"
                },
                "last_update": {
                    "type": "string"
                },
                "has_photo": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "createBird": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "age": {
                    "type": "string"
                },
                "acquire_date": {
                    "type": "string"
                },
                "photo": {
                    "type": "string"
                }
            }
        },
        "updateBird": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "age": {
                    "type": "string"
                },
                "acquire_date": {
                    "type": "string"
                },
                "photo": {
                    "type": "string"
                }
            }
        },
        "recordCheck": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "healthLog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "bird_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "appetite": {
                    "type": "string"
                },
                "activity": {
                    "type": "string"
                },
                "droppings": {
                    "type": "string"
                },
                "singing": {
                    "type": "string"
                },
                "result_status": {
                    "type": "string"
                },
                "status_text": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "addRecord": {
            "type": "object",
            "properties": {
                "weight_grams": {
                    "type": "number"
                },
                "is_molting": {
                    "type": "boolean"
                },
                "event": {
                    "type": "string"
                }
            }
        },
        "premium": {
            "type": "object",
            "properties": {
                "premium": {
                    "type": "boolean"
                }
            }
        },
        "reminder": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "boolean"
                },
                "time": {
                    "type": "string"
                }
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
	Title:            "Pássaro OK API",
	Description:      "Chequeo diario de salud de pájaros (semáforo GREEN/YELLOW/RED), historial, biblioteca y recordatorios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
