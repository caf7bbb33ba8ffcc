package prompt

var messagesEN = map[string]string{
	"list.sep": ", ",
	"none":     "none",
	"days_ago": "%d days ago",

	"status.header":       "[OOC: 🩺 REPRODUCTIVE SYSTEM: ACTIVE",
	"status.footer":       "]",
	"status.story_date":   "📆 Story date: %s",
	"status.contra.none":  "CONTRACEPTION: ❌ NOT USED. The character is unprotected; vaginal sex carries a pregnancy risk.",
	"status.contra":       "CONTRACEPTION: 🛡️ %s (best protection %v%%). Describe its use in the scene. Protection can fail; if it does, describe it explicitly.",
	"status.cycle":        "🩸 CYCLE: day %d of %d | Phase: %s | Fertility: %s",
	"status.period":       "🔴 Period: day %d of %d, %s flow",
	"status.pms":          "😣 PMS is active",
	"status.symptoms":     "Symptoms: %s",
	"status.cycle_rules":  "Show the cycle line at the start of each reply and let the phase shape the character's mood and body. After the last day the cycle starts again from day 1.",
	"status.tag_rules":    "🎲 CONCEPTION CHECK: after vaginal sex with ejaculation inside, end the reply with [CYCLE_DAY:<day>][CONCEPTION_CHECK]. Do not add the tag for oral, anal or withdrawn sex, or when contraception worked.",
	"status.sti_rules":    "🧫 After any unprotected or condom-protected sex with a named partner, add [STI_CHECK:<partner>] or [STI_CHECK:<partner>:condom].",
	"status.preg.header":  "🤰 PREGNANCY: ACTIVE",
	"status.preg.week":    "%v week | Trimester %d",
	"status.preg.stage":   "Stage: %s",
	"status.preg.visible": "Belly: %s",
	"status.preg.fetuses": "Multiple pregnancy: %s",
	"status.preg.sexes":   "Fetus sex (hidden from the character): %s",
	"status.preg.health":  "Health: %s",
	"status.preg.compl":   "Complications so far: %d",
	"status.preg.due":     "Due date: %s",
	"status.preg.advice":  "Guidance: %s",
	"status.preg.secret":  "The character does NOT know about the pregnancy until clear symptoms or a test.",
	"status.preg.rules":   "Show the pregnancy line at the start of each reply. Describe complications realistically.",
	"status.infections":   "🧫 Infections carried: %s",
	"status.stats":        "📊 Checks: %d | Conceptions: %d",

	"fertility.low":    "low",
	"fertility.medium": "medium",
	"fertility.high":   "HIGH",

	"multiples.2": "twins",
	"multiples.3": "triplets",

	"result.header": "[OOC:",
	"result.footer": "]",

	"conception.title":     "🎲 CONCEPTION CHECK",
	"conception.day":       "📅 Cycle day: %d (%s)",
	"conception.methods":   "🛡️ Contraception: %s",
	"conception.failed":    "⚠️ CONTRACEPTION FAILED!",
	"conception.chance":    "📊 Chance: %v%%",
	"conception.roll":      "🎲 Roll: %d",
	"conception.success":   "✅ CONCEPTION HAPPENED!",
	"conception.fail":      "❌ No conception",
	"conception.multiples": "👶 Fetuses: %d (%s!)",
	"conception.secret":    "The pregnancy has begun. The character does NOT know yet.",
	"conception.skipped":   "🤰 Already pregnant: no conception check was rolled.",

	"complication.title":        "⚠️ COMPLICATION CHECK | Trimester %d",
	"complication.roll":         "🎲 Roll: %d (chance %d%%)",
	"complication.normal":       "🟢 Normal: no complications",
	"complication.found":        "%s: %s",
	"complication.instruct":     "Show the symptoms realistically and dramatically in the scene.",
	"complication.not_pregnant": "Not pregnant: no complication check.",
	"complication.too_soon":     "Complications were already checked this week. Next check: %s",

	"sti.title":         "🧫 STI CHECK | Partner: %s",
	"sti.risk":          "Partner risk: %s",
	"sti.condom":        "🎈 Condom used",
	"sti.clean":         "The partner carries no infections.",
	"sti.attempt":       "%s: chance %v%%, roll %d → %s",
	"sti.already":       "%s: already infected",
	"sti.acquired":      "⚠️ ACQUIRED %s: incubation %d days, %s, %s",
	"sti.none_acquired": "✅ Nothing was transmitted",
	"sti.yes":           "transmitted",
	"sti.no":            "not transmitted",
	"sti.symptomatic":   "will show symptoms",
	"sti.asymptomatic":  "asymptomatic",
	"sti.instruct":      "The character does not know yet. Symptoms, if any, appear after the incubation period.",

	"birth.done":     "👶 Birth in the %v week: %d %s. Pregnancy tracking has been reset.",
	"birth.child":    "child",
	"birth.children": "children",
	"reminder.still": "Reminder: the character IS pregnant (%v week). A negative test or denial does not end the pregnancy.",
	"reset.done":     "Pregnancy reset.",

	"period.active": "🔴 Period: day %d of %d, %s flow",
	"period.pms":    "😣 PMS: period expected in %d days",
	"period.none":   "No period. Next one in %d days.",
	"period.last":   "Last period started %s",

	"cycle.set":      "Cycle day set to %d.",
	"cycle.advanced": "Cycle advanced by %d days, now day %d.",
	"cycle.paused":   "The cycle is paused during pregnancy.",

	"pregnancy.none":      "Not pregnant.",
	"pregnancy.elapsed":   "Days since conception: %d",
	"pregnancy.conceived": "Conceived %s (%s)",

	"method.on":  "%s: on",
	"method.off": "%s: off",

	"set.week":         "Pregnancy week set to %d.",
	"set.fetuses":      "Fetus count set to %d.",
	"set.conceived":    "Conception date set to %s.",
	"set.started":      "Pregnancy tracking started from the story.",
	"set.not_pregnant": "Not pregnant: give week or conceived to start tracking.",

	"notify.conceived":     "Conception happened!",
	"notify.not_conceived": "No conception this time.",
	"notify.complication":  "Pregnancy complication: %s",
	"notify.sti":           "Infection acquired: %s",
	"notify.tracked":       "Pregnancy picked up from the story: week %d.",
	"notify.birth":         "The baby is born!",

	"phase.menstrual":  "menstruation",
	"phase.follicular": "follicular",
	"phase.ovulatory":  "OVULATION",
	"phase.luteal":     "luteal",

	"intensity.light":  "light",
	"intensity.normal": "normal",
	"intensity.heavy":  "heavy",

	"method.condom":     "condom",
	"method.pill":       "pill",
	"method.iud":        "IUD",
	"method.implant":    "implant",
	"method.withdrawal": "withdrawal",

	"health.normal":   "normal",
	"health.warning":  "⚠️ needs attention",
	"health.critical": "🔴 critical",

	"severity.mild":     "🟠 MILD",
	"severity.serious":  "🟡 SERIOUS",
	"severity.critical": "🔴 CRITICAL",

	"sex.M": "boy",
	"sex.F": "girl",

	"risk.unknown": "unknown",
	"risk.safe":    "safe",
	"risk.low":     "low",
	"risk.medium":  "medium",
	"risk.high":    "high",

	"treatment.curable":    "curable",
	"treatment.manageable": "manageable, not curable",
	"treatment.clearable":  "may clear on its own",

	"sti.kind.chlamydia":      "chlamydia",
	"sti.kind.gonorrhea":      "gonorrhea",
	"sti.kind.trichomoniasis": "trichomoniasis",
	"sti.kind.syphilis":       "syphilis",
	"sti.kind.herpes":         "herpes",
	"sti.kind.hpv":            "HPV",
	"sti.kind.hepatitis_b":    "hepatitis B",
	"sti.kind.hiv":            "HIV",

	"stage.implantation":     "implantation",
	"stage.embryo":           "embryo",
	"stage.early_fetus":      "early fetus",
	"stage.second_trimester": "second trimester begins",
	"stage.quickening":       "first movements",
	"stage.active_movement":  "active movement",
	"stage.third_trimester":  "third trimester",
	"stage.full_term":        "full term",
	"stage.overdue":          "overdue",

	"visibility.not_visible":    "not visible",
	"visibility.barely_visible": "barely visible",
	"visibility.noticeable":     "noticeable",
	"visibility.obvious":        "obvious",

	"advice.advice_unaware":        "no symptoms yet; the character does not know.",
	"advice.advice_suspect":        "a late period and nausea may raise suspicion.",
	"advice.advice_first_checkup":  "time for the first checkup and ultrasound.",
	"advice.advice_energy_returns": "nausea fades and energy returns.",
	"advice.advice_anatomy_scan":   "the anatomy scan can show the sex.",
	"advice.advice_glucose_test":   "glucose test; swelling and back pain are common.",
	"advice.advice_birth_plan":     "prepare for birth; practice contractions appear.",
	"advice.advice_labor_signs":    "the belly drops; watch for signs of labor.",
	"advice.advice_induction":      "overdue; induction should be discussed.",

	"complication.miscarriage_threat":       "threatened miscarriage",
	"complication.ectopic_suspicion":        "suspected ectopic pregnancy",
	"complication.first_trimester_bleeding": "bleeding",
	"complication.subchorionic_hematoma":    "subchorionic hematoma",
	"complication.hyperemesis":              "severe morning sickness",
	"complication.anemia":                   "anemia",
	"complication.cervical_insufficiency":   "cervical insufficiency",
	"complication.placental_abruption":      "placental abruption",
	"complication.gestational_diabetes":     "gestational diabetes",
	"complication.preeclampsia_signs":       "early signs of preeclampsia",
	"complication.uterine_hypertonus":       "uterine hypertonus",
	"complication.preterm_labor":            "preterm labor",
	"complication.preeclampsia":             "preeclampsia",
	"complication.placenta_previa_bleeding": "bleeding from placenta previa",
	"complication.heavy_edema":              "heavy swelling",
	"complication.severe_back_pain":         "severe back pain",

	"symptom.cramps":                 "cramps",
	"symptom.fatigue":                "fatigue",
	"symptom.lower_back_pain":        "lower back pain",
	"symptom.bloating":               "bloating",
	"symptom.strong_cramps":          "strong cramps",
	"symptom.headache":               "headache",
	"symptom.nausea":                 "nausea",
	"symptom.dizziness":              "dizziness",
	"symptom.mild_cramps":            "mild cramps",
	"symptom.tiredness":              "tiredness",
	"symptom.tender_breasts":         "tender breasts",
	"symptom.irritability":           "irritability",
	"symptom.mood_swings":            "mood swings",
	"symptom.food_cravings":          "food cravings",
	"symptom.acne":                   "acne",
	"symptom.anxiety":                "anxiety",
	"symptom.tearfulness":            "tearfulness",
	"symptom.rising_energy":          "rising energy",
	"symptom.better_mood":            "better mood",
	"symptom.clear_skin":             "clear skin",
	"symptom.high_libido":            "high libido",
	"symptom.mild_pelvic_twinge":     "a mild pelvic twinge",
	"symptom.heightened_senses":      "heightened senses",
	"symptom.confidence":             "confidence",
	"symptom.calm":                   "calm",
	"symptom.slower_energy":          "slower energy",
	"symptom.appetite_increase":      "bigger appetite",
	"symptom.none_noticeable":        "nothing noticeable",
	"symptom.light_spotting":         "light spotting",
	"symptom.mild_cramping":          "mild cramping",
	"symptom.breast_tenderness":      "breast tenderness",
	"symptom.missed_period":          "a missed period",
	"symptom.morning_sickness":       "morning sickness",
	"symptom.frequent_urination":     "frequent urination",
	"symptom.food_aversions":         "food aversions",
	"symptom.heartburn":              "heartburn",
	"symptom.headaches":              "headaches",
	"symptom.nausea_fading":          "nausea fading",
	"symptom.energy_returning":       "energy returning",
	"symptom.growing_belly":          "a growing belly",
	"symptom.round_ligament_pain":    "round ligament pain",
	"symptom.first_flutters":         "first flutters",
	"symptom.fetal_movement":         "fetal movement",
	"symptom.back_pain":              "back pain",
	"symptom.nasal_congestion":       "nasal congestion",
	"symptom.increased_appetite":     "increased appetite",
	"symptom.skin_changes":           "skin changes",
	"symptom.strong_kicks":           "strong kicks",
	"symptom.swollen_ankles":         "swollen ankles",
	"symptom.stretch_marks":          "stretch marks",
	"symptom.leg_cramps":             "leg cramps",
	"symptom.shortness_of_breath":    "shortness of breath",
	"symptom.braxton_hicks":          "practice contractions",
	"symptom.insomnia":               "insomnia",
	"symptom.pelvic_pressure":        "pelvic pressure",
	"symptom.lightening":             "the belly dropping",
	"symptom.nesting_instinct":       "nesting instinct",
	"symptom.mucus_plug":             "losing the mucus plug",
	"symptom.exhaustion":             "exhaustion",
	"symptom.irregular_contractions": "irregular contractions",
}
