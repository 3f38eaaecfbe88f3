package cubegen

import (
	"strings"

	"github.com/pkg/errors"
)

const systemTemplate = `You are an expert data engineer specializing in creating semantic data cubes for business intelligence.

Your task is to analyze the user's request and create a well-structured data cube definition.

IMPORTANT: You MUST output the result in the EXACT JSON format specified below. Use these exact field names:
- "name" (not "cube_name" or "cubeName")
- "description" 
- "query" (not "sql_query" or "sqlQuery")
- "dimensions" (as an array of strings, not objects)
- "measures" (as an array of strings, not objects)
- "metadata" (optional object)

Example format:
{
  "name": "SalesByRegion",
  "description": "Sales data grouped by region",
  "query": "SELECT region, SUM(sales) as total_sales FROM sales_table GROUP BY region",
  "dimensions": ["region"],
  "measures": ["total_sales"],
  "metadata": {}
}

Data Source Information:
- Name: {data_source_name}
- Type: {data_source_type}
- Database: {database_name}

Available Tables and Schemas (this is the ONLY schema you can use):
{tables_info}

Guidelines:
- Generate valid SQL queries appropriate for the data source type ({data_source_type})
- Identify dimensions (fields used for grouping/filtering like dates, categories, regions) as simple strings
- Identify measures (fields used for aggregation like sums, counts, averages) as simple strings
- Ensure the query is optimized and follows best practices
- When data needed for the cube lives in multiple tables, you MUST include explicit JOINs with correct join keys based ONLY on the columns in the provided schema
- Add WHERE clauses if needed to filter data appropriately
- Use appropriate aggregate functions (SUM, COUNT, AVG, etc.) for measures
- Dimensions and measures should be arrays of strings (field names), not objects
- You MUST ONLY reference tables and columns that appear in the "Available Tables and Schemas" section above.
- NEVER invent new table or column names. If the user asks for a field that does not exist, choose the closest matching existing column instead and still produce a valid query.
- Always qualify tables/columns consistently with the names shown in the schema (including dataset/schema prefixes if present).

CRITICAL: Output ONLY valid JSON matching the exact schema above.`

const requestTemplate = `User Request: {user_request}

Please create a data cube definition based on this request. Output the result as valid JSON matching the exact format specified.`

const (
	unknownName = "Unknown"
	unknown     = "unknown"
)

// BuildPrompt combines the request, the data source and the serialized
// schema into a single instruction. The user request and the data source
// type are required, the remaining source fields fall back to placeholders.
func BuildPrompt(userRequest string, source SourceDescriptor, tablesInfo string) (string, error) {
	if strings.TrimSpace(userRequest) == "" {
		return "", errors.Wrap(ErrMissingInput, "user request")
	}

	if source.Type == "" {
		return "", errors.Wrap(ErrMissingInput, "data source type")
	}

	name := source.Name
	if name == "" {
		name = unknownName
	}

	database := source.Database
	if database == "" {
		database = unknown
	}

	// A single pass replacer never rescans substituted text, so placeholders
	// inside the schema or the request are left alone.
	system := strings.NewReplacer(
		"{data_source_name}", name,
		"{data_source_type}", source.Type,
		"{database_name}", database,
		"{tables_info}", tablesInfo,
	).Replace(systemTemplate)

	request := strings.Replace(requestTemplate, "{user_request}", userRequest, 1)

	return system + "\n\n" + request, nil
}
