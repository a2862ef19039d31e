package report

// Schema is the JSON Schema (Draft 2020-12) for the report JSON output.
// It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/mcpreport/report.schema.json",
  "title": "MCP Server Test Report",
  "description": "Output schema for mcpreport render --format=json",
  "type": "object",
  "required": ["version", "report", "findings"],
  "properties": {
    "version": {
      "type": "string",
      "description": "mcpreport version that produced the output"
    },
    "report": { "$ref": "#/$defs/Document" },
    "findings": {
      "type": "array",
      "items": { "$ref": "#/$defs/Finding" }
    }
  },
  "$defs": {
    "Document": {
      "type": "object",
      "required": ["meta", "header", "overview", "coverage", "sections"],
      "properties": {
        "meta": { "$ref": "#/$defs/Meta" },
        "header": { "$ref": "#/$defs/Header" },
        "overview": { "$ref": "#/$defs/Card" },
        "coverage": { "$ref": "#/$defs/CoverageCard" },
        "sections": {
          "type": "array",
          "items": { "$ref": "#/$defs/Section" }
        }
      }
    },
    "Meta": {
      "type": "object",
      "required": ["title", "description", "lang"],
      "properties": {
        "title": { "type": "string" },
        "description": { "type": "string" },
        "lang": { "type": "string" }
      }
    },
    "Variant": {
      "type": "string",
      "enum": ["secondary", "outline", "destructive"]
    },
    "Badge": {
      "type": "object",
      "required": ["label", "variant"],
      "properties": {
        "label": { "type": "string" },
        "variant": { "$ref": "#/$defs/Variant" }
      }
    },
    "Header": {
      "type": "object",
      "required": ["title", "subtitle", "badges"],
      "properties": {
        "title": { "type": "string" },
        "subtitle": { "type": "string" },
        "badges": {
          "type": "array",
          "items": { "$ref": "#/$defs/Badge" }
        }
      }
    },
    "Card": {
      "type": "object",
      "required": ["title"],
      "properties": {
        "title": { "type": "string" },
        "description": { "type": "string" },
        "items": {
          "type": "array",
          "items": { "type": "string" }
        }
      }
    },
    "CoverageCard": {
      "type": "object",
      "required": ["title", "description", "columns", "records"],
      "properties": {
        "title": { "type": "string" },
        "description": { "type": "string" },
        "columns": {
          "type": "array",
          "items": { "type": "string" }
        },
        "records": {
          "type": "array",
          "items": { "$ref": "#/$defs/Record" }
        }
      }
    },
    "Record": {
      "type": "object",
      "required": ["component", "total", "passed", "failed", "coverage"],
      "properties": {
        "component": { "type": "string" },
        "total": { "type": "integer", "minimum": 0 },
        "passed": { "type": "integer", "minimum": 0 },
        "failed": { "type": "integer", "minimum": 0 },
        "coverage": {
          "type": "integer",
          "minimum": 0,
          "maximum": 100,
          "description": "Stored coverage percentage, independent of the counts"
        }
      }
    },
    "Section": {
      "type": "object",
      "required": ["id", "title", "badge"],
      "properties": {
        "id": {
          "type": "string",
          "enum": ["successful-tests", "failed-tests", "recommendations", "conclusion"]
        },
        "title": { "type": "string" },
        "badge": { "$ref": "#/$defs/Badge" },
        "items": {
          "type": "array",
          "items": { "type": "string" }
        },
        "groups": {
          "type": "array",
          "items": { "$ref": "#/$defs/Card" }
        },
        "paragraph": { "type": "string" }
      }
    },
    "Finding": {
      "type": "object",
      "required": ["component", "kind", "message"],
      "properties": {
        "component": { "type": "string" },
        "kind": {
          "type": "string",
          "enum": ["CountMismatch", "CoverageDrift", "OutOfRange"]
        },
        "message": { "type": "string" }
      }
    }
  }
}`
