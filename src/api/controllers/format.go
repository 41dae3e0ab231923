package controllers

import (
	"fmt"
	"net/url"
	"strconv"

	"fingenius/src/schemas"
	"fingenius/src/utils"
)

// Format runs one of the display formatters on query parameters:
// value (numbers and email), currency, decimals, text and max.
func (c *Controller) Format(kind string, query url.Values) (*schemas.FormatResponse, error) {
	var (
		input  string
		result string
		err    error
	)

	switch kind {
	case "currency", "percentage", "number", "change":
		input = query.Get("value")
		value, perr := strconv.ParseFloat(input, 64)
		if perr != nil {
			return nil, utils.BadRequest(fmt.Sprintf("value %q is not a number", input))
		}
		switch kind {
		case "currency":
			result, err = utils.FormatCurrency(value, query.Get("currency"))
		case "percentage":
			decimals := 2
			if d := query.Get("decimals"); d != "" {
				if decimals, err = strconv.Atoi(d); err != nil {
					return nil, utils.BadRequest(fmt.Sprintf("decimals %q is not an integer", d))
				}
			}
			result, err = utils.FormatPercentage(value, decimals)
		case "number":
			result, err = utils.FormatNumber(value)
		case "change":
			result = string(utils.ChangeColorClass(value))
		}
	case "truncate":
		input = query.Get("text")
		limit, perr := strconv.Atoi(query.Get("max"))
		if perr != nil {
			return nil, utils.BadRequest("max must be an integer")
		}
		result = utils.TruncateText(input, limit)
	case "capitalize":
		input = query.Get("text")
		result = utils.Capitalize(input)
	case "email":
		input = query.Get("value")
		result = strconv.FormatBool(utils.IsValidEmail(input))
	default:
		return nil, utils.NotFound(fmt.Sprintf("unknown format %q", kind))
	}

	if err != nil {
		return nil, utils.FormatError(err)
	}
	return &schemas.FormatResponse{Kind: kind, Input: input, Result: result}, nil
}
