package journal

// Schema creates the journal tables. Amounts are stored as decimal text so
// they read back exactly.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	mode TEXT NOT NULL,
	dataset TEXT NOT NULL,
	instruments INTEGER NOT NULL,
	start_day TEXT NOT NULL,
	end_day TEXT NOT NULL,
	days INTEGER NOT NULL,
	transactions INTEGER NOT NULL,
	swing_buys INTEGER NOT NULL,
	swing_sells INTEGER NOT NULL,
	intraday_buys INTEGER NOT NULL,
	intraday_sells INTEGER NOT NULL,
	min_intraday_profit TEXT NOT NULL,
	min_balance_fraction TEXT NOT NULL,
	start_balance TEXT NOT NULL,
	end_balance TEXT NOT NULL,
	end_portfolio TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	day TEXT NOT NULL,
	action TEXT NOT NULL,
	instrument TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price TEXT NOT NULL,
	balance TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE TABLE IF NOT EXISTS valuations (
	run_id TEXT NOT NULL,
	day TEXT NOT NULL,
	balance TEXT NOT NULL,
	portfolio TEXT NOT NULL,
	PRIMARY KEY (run_id, day)
);

CREATE INDEX IF NOT EXISTS idx_transactions_day ON transactions(run_id, day);
`
