package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder configured for $N placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
