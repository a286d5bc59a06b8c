package desensitize

var (
	// MerchantKeyRule 商户密钥
	MerchantKeyRule = MustNewFieldRule("merchant_key", "merchantKey", "******")

	// AuthorizationRule 签名头
	AuthorizationRule = MustNewFieldRule("authorization", "authorization", "******")

	// PayTokenRule 支付令牌 (payToken / paytoken)
	PayTokenRule = MustNewFieldRule("pay_token", "payToken", "******")

	// EmailRule 邮箱 (iamovac@gmail.com -> i***c@g***.com)
	EmailRule = MustNewContentRule(
		"email",
		`\b([A-Za-z0-9])[A-Za-z0-9._%+-]*([A-Za-z0-9])@([A-Za-z0-9])[A-Za-z0-9.-]*\.([A-Za-z]{2,})\b`,
		"$1***$2@$3***.$4",
	)

	// MobileRule 手机号，保留前3位和后2位 (233241234567 -> 233*******67)
	MobileRule = MustNewContentRule(
		"mobile",
		`\b(\+?\d{3})\d{5,10}(\d{2})\b`,
		"$1*******$2",
	)
)

// BuiltinRules 返回所有内置规则，顺序即执行顺序
func BuiltinRules() []Rule {
	return []Rule{
		MerchantKeyRule,
		AuthorizationRule,
		PayTokenRule,
		EmailRule,
		MobileRule,
	}
}

// Default 返回装载全部内置规则的钩子
func Default() *Hook {
	h := NewHook()
	h.AddBuiltin(BuiltinRules()...)
	return h
}
